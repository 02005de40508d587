package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modsmith/modsmith/internal/assist"
	"github.com/modsmith/modsmith/internal/output"
	"github.com/modsmith/modsmith/internal/project"
	"github.com/modsmith/modsmith/internal/scaffold"
)

// ApplyCmd creates and returns the 'apply' command: merge an assistant
// response document into the project.
func ApplyCmd() *cobra.Command {
	var assetPayload, assetDescriptor string

	cmd := &cobra.Command{
		Use:   "apply [response.json]",
		Short: "Apply an assistant response to the project",
		Long: `Reads a structured assistant response and merges any file changes it
carries into the project. Recognized shapes:

  {"files": [{"filePath": ..., "fileContent": ...}, ...]}   batch of files
  {"filePath": ..., "fileContent": ...}                      single file
  {"prompt": ..., "fileName": ..., "spriteNames": [...]}     asset request

Anything else is treated as conversational text and leaves the project
untouched. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			raw, err := readResponse(args[0])
			if err != nil {
				output.Error(err.Error())
				os.Exit(1)
			}

			resp := assist.Decode(raw)
			output.Verbose(fmt.Sprintf("Decoded response as %s", resp.Kind))

			switch resp.Kind {
			case assist.PlainText:
				output.Info("Response contains no file changes:")
				fmt.Println(resp.Text)

			case assist.AssetRequest:
				if assetPayload == "" {
					output.Info("Response is an asset-generation request:")
					output.Step("prompt:  " + resp.Asset.Prompt)
					output.Step("file:    " + assist.SanitizeFileName(resp.Asset.FileName))
					output.Step("sprites: " + strings.Join(resp.Asset.SpriteNames, ", "))
					output.Info("Generate the asset, then re-run with --asset-payload")
					return
				}
				if err := applyAsset(resp, assetPayload, assetDescriptor); err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				output.Success(fmt.Sprintf("Added asset %s", assist.SanitizeFileName(resp.Asset.FileName)))

			default:
				if err := applyFiles(resp); err != nil {
					output.Error(err.Error())
					os.Exit(1)
				}
				output.Success(fmt.Sprintf("Applied %d file change(s)", len(resp.Files)))
			}
		},
	}

	cmd.Flags().StringVar(&assetPayload, "asset-payload", "", "Binary file satisfying an asset request")
	cmd.Flags().StringVar(&assetDescriptor, "asset-descriptor", "", "Descriptor file accompanying the asset payload")

	return cmd
}

// applyAsset completes an asset request with a generated payload and its
// companion descriptor.
func applyAsset(resp assist.Response, payloadPath, descriptorPath string) error {
	payload, err := os.ReadFile(payloadPath)
	if err != nil {
		return fmt.Errorf("failed to read asset payload: %w", err)
	}

	descriptor := ""
	if descriptorPath != "" {
		data, err := os.ReadFile(descriptorPath)
		if err != nil {
			return fmt.Errorf("failed to read asset descriptor: %w", err)
		}
		descriptor = string(data)
	}

	prev, err := scaffold.ReadAssets(".")
	if err != nil {
		return fmt.Errorf("failed to read existing assets: %w", err)
	}

	store := project.NewStore()
	store.Regenerate(prev)
	hadPlaceholder := prev.Has(project.PlaceholderPath)

	encoded := base64.StdEncoding.EncodeToString(payload)
	if err := assist.InsertAsset(store, store.Version(), resp.Asset.FileName, encoded, descriptor); err != nil {
		return err
	}

	tree := store.Tree()
	ops, err := scaffold.TreeOps(tree, ".")
	if err != nil {
		return err
	}
	if err := scaffold.Execute(context.Background(), ops, scaffold.ExecuteOptions{Force: true}); err != nil {
		return err
	}

	if hadPlaceholder && !tree.Has(project.PlaceholderPath) {
		os.Remove(filepath.FromSlash(project.PlaceholderPath))
	}

	return nil
}

// applyFiles merges file mutations through the store so the reconciliation
// policy (placeholder removal, path sanitizing) applies, then writes the
// result to disk.
func applyFiles(resp assist.Response) error {
	prev, err := scaffold.ReadAssets(".")
	if err != nil {
		return fmt.Errorf("failed to read existing assets: %w", err)
	}

	store := project.NewStore()
	store.Regenerate(prev)

	hadPlaceholder := prev.Has(project.PlaceholderPath)

	if _, err := assist.Apply(store, store.Version(), resp); err != nil {
		return err
	}

	tree := store.Tree()
	ops, err := scaffold.TreeOps(tree, ".")
	if err != nil {
		return err
	}
	if err := scaffold.Execute(context.Background(), ops, scaffold.ExecuteOptions{Force: true}); err != nil {
		return err
	}

	// The merge dropped the placeholder; mirror that on disk.
	if hadPlaceholder && !tree.Has(project.PlaceholderPath) {
		os.Remove(filepath.FromSlash(project.PlaceholderPath))
	}

	return nil
}

func readResponse(arg string) ([]byte, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", arg, err)
	}
	return data, nil
}
