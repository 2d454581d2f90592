package models

// FileKind is the extraction path an upload is routed to.
type FileKind int

const (
	KindUnknown FileKind = iota
	KindPDF
	KindImage
)

func (k FileKind) String() string {
	switch k {
	case KindPDF:
		return "pdf"
	case KindImage:
		return "image"
	default:
		return "unknown"
	}
}

// FailureKind tags why an extraction produced no text.
type FailureKind int

const (
	FailureNone FailureKind = iota
	FailureMissingFile
	FailureUnsupportedFormat
	FailureNoLegibleText
	FailureExtraction
)

func (f FailureKind) String() string {
	switch f {
	case FailureNone:
		return "none"
	case FailureMissingFile:
		return "missing_file"
	case FailureUnsupportedFormat:
		return "unsupported_format"
	case FailureNoLegibleText:
		return "no_legible_text"
	case FailureExtraction:
		return "extraction_failure"
	default:
		return "unknown"
	}
}

// Client-facing messages for each failure kind.
const (
	MsgMissingFile       = "No file was supplied or it was empty."
	MsgUnsupportedFormat = "The file is not a PDF or image format."
	MsgNoLegibleText     = "The file contains no legible text."
	MsgExtractionFailure = "An error occurred while processing the file."
	MsgUploadTooLarge    = "The file exceeds the maximum upload size."
)

// ExtractionResult is either Text (Failure == FailureNone) or a tagged failure.
// Err is only set for FailureExtraction.
type ExtractionResult struct {
	Kind    FileKind
	Text    string
	Failure FailureKind
	Err     error
}

func (r ExtractionResult) OK() bool { return r.Failure == FailureNone }

func TextResult(kind FileKind, text string) ExtractionResult {
	return ExtractionResult{Kind: kind, Text: text}
}

func FailureResult(kind FileKind, failure FailureKind, err error) ExtractionResult {
	return ExtractionResult{Kind: kind, Failure: failure, Err: err}
}

// TextResponse is the 200 body.
type TextResponse struct {
	Text string `json:"text"`
}

// ErrorResponse is the 4xx/5xx body. Error carries the underlying cause on 500s.
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// ArchivedUpload describes a copy of an accepted upload kept in object storage.
type ArchivedUpload struct {
	ID          string `json:"id"`
	FileName    string `json:"file_name"`
	Kind        string `json:"kind"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	StorageURL  string `json:"storage_url"`
}
