package resume

import "time"

// Source distinguishes files attached to a formal application from
// stand-alone uploads dropped into the shared curriculums/ prefix.
type Source string

const (
	SourceApplication Source = "postulacion"
	SourceUnsolicited Source = "espontaneo"
)

// Entry is one row of the admin CV bank view.
type Entry struct {
	ObjectKey  string
	FileName   string
	Size       int64
	Source     Source
	Applicant  string // empty for unsolicited uploads
	URL        string // presigned, short-lived
	UploadedAt time.Time
}
