// Package generator produces the base file tree for a mod project from its
// configuration.
//
// Generation is a pure dispatch over the configuration: the manifest, build
// script, code stub, docs, CI workflow and logo are assembled from an
// embedded template bank. The same configuration always yields a
// byte-identical tree, except for the license year.
package generator
