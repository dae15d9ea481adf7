package form

import (
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
)

// MaxCVSize is the largest CV accepted, in bytes.
const MaxCVSize = 5 << 20

const (
	mimePDF  = "application/pdf"
	mimeDOC  = "application/msword"
	mimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// Upload describes a received file. Only the leading bytes are kept, for
// content sniffing; the file itself is never stored.
type Upload struct {
	Filename     string
	Size         int64
	DeclaredType string
	MIME         *mimetype.MIME
}

// ReadUpload sniffs a multipart file. It returns nil, nil when fh is nil
// or empty, which counts as "no file".
func ReadUpload(fh *multipart.FileHeader) (*Upload, error) {
	if fh == nil || fh.Size == 0 {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	m, err := mimetype.DetectReader(f)
	if err != nil {
		return nil, fmt.Errorf("sniff upload: %w", err)
	}
	return &Upload{
		Filename:     fh.Filename,
		Size:         fh.Size,
		DeclaredType: fh.Header.Get("Content-Type"),
		MIME:         m,
	}, nil
}

// NewUpload sniffs an in-memory file.
func NewUpload(filename, declaredType string, r io.Reader, size int64) (*Upload, error) {
	m, err := mimetype.DetectReader(r)
	if err != nil {
		return nil, fmt.Errorf("sniff upload: %w", err)
	}
	return &Upload{Filename: filename, Size: size, DeclaredType: declaredType, MIME: m}, nil
}

// IsDocument accepts PDF, DOC and DOCX. Legacy .doc files do not always
// sniff past the generic OLE container, so the declared type settles those.
func (u *Upload) IsDocument() bool {
	if u == nil || u.MIME == nil {
		return false
	}
	for m := u.MIME; m != nil; m = m.Parent() {
		if mimetype.EqualsAny(m.String(), mimePDF, mimeDOC, mimeDOCX) {
			return true
		}
	}
	if u.MIME.Is("application/x-ole-storage") {
		return mimetype.EqualsAny(u.DeclaredType, mimeDOC)
	}
	return false
}

// ValidateCV checks type first, then size.
func ValidateCV(u *Upload) error {
	if !u.IsDocument() {
		return &ValidationError{Field: "cv", Message: "Please upload a PDF or Word document"}
	}
	if u.Size > MaxCVSize {
		return &ValidationError{Field: "cv", Message: "File size should be less than 5MB"}
	}
	return nil
}
