package domain

import (
	"bytes"
	"path/filepath"
	"strings"
)

const PDFContentType = "application/pdf"

var pdfMagic = []byte("%PDF-")

// DocumentReference locates one uploaded document and its derived search index.
type DocumentReference struct {
	ContentPath string `json:"filepath"`
	IndexPath   string `json:"vector_path"`
}

func (r DocumentReference) Complete() bool {
	return strings.TrimSpace(r.ContentPath) != "" && strings.TrimSpace(r.IndexPath) != ""
}

// UploadFile is the opaque payload handed to the processing service.
type UploadFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// IsPDF reports whether the file carries a .pdf name, a PDF header, and no
// conflicting declared content type.
func (f UploadFile) IsPDF() bool {
	if !strings.EqualFold(filepath.Ext(strings.TrimSpace(f.Name)), ".pdf") {
		return false
	}
	if !bytes.HasPrefix(f.Data, pdfMagic) {
		return false
	}

	contentType := strings.ToLower(strings.TrimSpace(f.ContentType))
	if contentType == "" {
		return true
	}
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = strings.TrimSpace(contentType[:i])
	}

	return contentType == PDFContentType
}
