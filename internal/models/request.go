package models

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/toolgen/toolgen/internal/service"
)

const maxFormMemory = 1 << 20

var (
	ErrInvalidJSON = errors.New("request body is not valid JSON")
	ErrNotObject   = errors.New("request body must be a JSON object")
)

// GenerateToolRequest for POST /generate_tool. Every field is optional.
// Set records which keys were present, so an explicit "" is kept while an
// absent key falls back to the renderer default.
type GenerateToolRequest struct {
	ToolName           string `json:"toolName"`
	Description        string `json:"description"`
	Language           string `json:"language"`
	Frameworks         string `json:"frameworks"`
	InputType          string `json:"inputType"`
	OutputType         string `json:"outputType"`
	AdditionalFeatures string `json:"additionalFeatures"`
	IncludeComments    bool   `json:"includeComments"`
	CodeStyle          string `json:"codeStyle"`

	Set service.Field `json:"-"`
}

// field lists the accepted keys for one request field, camelCase first
type field struct {
	dst  *string
	bit  service.Field
	keys []string
}

func (req *GenerateToolRequest) stringFields() []field {
	return []field{
		{&req.ToolName, service.FieldName, []string{"toolName", "tool_name", "name"}},
		{&req.Description, service.FieldDescription, []string{"description"}},
		{&req.Language, service.FieldLanguage, []string{"language"}},
		{&req.Frameworks, service.FieldFrameworks, []string{"frameworks"}},
		{&req.InputType, service.FieldInputType, []string{"inputType", "input_type"}},
		{&req.OutputType, service.FieldOutputType, []string{"outputType", "output_type"}},
		{&req.AdditionalFeatures, service.FieldAdditionalFeatures, []string{"additionalFeatures", "additional_features"}},
		{&req.CodeStyle, service.FieldCodeStyle, []string{"codeStyle", "code_style"}},
	}
}

var includeCommentsKeys = []string{"includeComments", "include_comments"}

// DecodeGenerateToolRequest reads form-encoded or JSON bodies. Only a body
// that cannot be parsed at all is an error; odd field values are dropped.
func DecodeGenerateToolRequest(r *http.Request) (GenerateToolRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return parseForm(r, mediaType)
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return GenerateToolRequest{}, fmt.Errorf("read body: %w", err)
	}
	return ParseGenerateToolJSON(body)
}

// ParseGenerateToolJSON extracts fields leniently: a value of the wrong JSON
// type is treated as missing, a present "" is kept. An empty body yields the zero request.
func ParseGenerateToolJSON(body []byte) (GenerateToolRequest, error) {
	var req GenerateToolRequest
	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}
	if !gjson.ValidBytes(body) {
		return req, ErrInvalidJSON
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return req, ErrNotObject
	}

	for _, f := range req.stringFields() {
		for _, k := range f.keys {
			if v := root.Get(k); v.Type == gjson.String {
				*f.dst = v.Str
				req.Set |= f.bit
				break
			}
		}
	}
	for _, k := range includeCommentsKeys {
		if v := root.Get(k); v.Exists() {
			req.IncludeComments = jsonBool(v)
			req.Set |= service.FieldIncludeComments
			break
		}
	}
	return req, nil
}

func parseForm(r *http.Request, mediaType string) (GenerateToolRequest, error) {
	var req GenerateToolRequest
	var err error
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(maxFormMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		return req, fmt.Errorf("parse form: %w", err)
	}

	for _, f := range req.stringFields() {
		for _, k := range f.keys {
			if vs, ok := r.PostForm[k]; ok && len(vs) > 0 {
				*f.dst = vs[0]
				req.Set |= f.bit
				break
			}
		}
	}
	for _, k := range includeCommentsKeys {
		if vs, ok := r.PostForm[k]; ok && len(vs) > 0 {
			req.IncludeComments = parseBool(vs[0])
			req.Set |= service.FieldIncludeComments
			break
		}
	}
	return req, nil
}

func jsonBool(v gjson.Result) bool {
	switch v.Type {
	case gjson.True:
		return true
	case gjson.Number:
		return v.Num != 0
	case gjson.String:
		return parseBool(v.Str)
	default:
		return false
	}
}

func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "on", "yes":
		return true
	default:
		return false
	}
}
