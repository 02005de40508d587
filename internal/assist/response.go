// Package assist interprets structured assistant responses as project-tree
// mutations.
//
// A response is decoded into a closed variant set: a batch of files, a
// single legacy file object, an asset-generation request, or plain
// conversational text. Plain text is the exhaustive fallback; an
// unrecognized shape never raises an error past this boundary.
package assist

import (
	"encoding/json"
	"strings"
)

// Kind discriminates the decoded response variants.
type Kind int

const (
	// PlainText is conversational output; it never touches the tree.
	PlainText Kind = iota
	// FileBatch is the {files: [{filePath, fileContent}, ...]} shape.
	FileBatch
	// SingleFile is the legacy single {filePath, fileContent} shape.
	SingleFile
	// AssetRequest asks for a generated binary asset plus descriptor.
	AssetRequest
)

func (k Kind) String() string {
	switch k {
	case FileBatch:
		return "file-batch"
	case SingleFile:
		return "single-file"
	case AssetRequest:
		return "asset-request"
	default:
		return "plain-text"
	}
}

// FileMutation is one file insertion or update from a response.
type FileMutation struct {
	Path    string `json:"filePath"`
	Content string `json:"fileContent"`
}

// Asset describes a requested binary asset.
type Asset struct {
	Prompt      string   `json:"prompt"`
	FileName    string   `json:"fileName"`
	SpriteNames []string `json:"spriteNames"`
}

// Response is a decoded assistant response.
type Response struct {
	Kind  Kind
	Files []FileMutation
	Text  string
	Asset *Asset
}

// Decode classifies raw assistant output by structural inspection. Invalid
// JSON and unknown shapes decode to PlainText.
func Decode(raw []byte) Response {
	text := strings.TrimSpace(string(raw))

	var batch struct {
		Files []FileMutation `json:"files"`
	}
	if err := json.Unmarshal(raw, &batch); err == nil && len(batch.Files) > 0 {
		if valid := validMutations(batch.Files); len(valid) > 0 {
			return Response{Kind: FileBatch, Files: valid}
		}
	}

	var asset Asset
	if err := json.Unmarshal(raw, &asset); err == nil && asset.FileName != "" && asset.Prompt != "" {
		return Response{Kind: AssetRequest, Asset: &asset}
	}

	var single FileMutation
	if err := json.Unmarshal(raw, &single); err == nil && single.Path != "" {
		return Response{Kind: SingleFile, Files: []FileMutation{single}}
	}

	return Response{Kind: PlainText, Text: text}
}

func validMutations(files []FileMutation) []FileMutation {
	var out []FileMutation
	for _, f := range files {
		if f.Path != "" {
			out = append(out, f)
		}
	}
	return out
}
