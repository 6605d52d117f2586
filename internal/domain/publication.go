package domain

// Publication holds everything resolved about one tag publication run.

type Publication struct {
	Version      *ReleaseVersion
	MajorTag     string
	Remote       string
	Commit       string // resolved commit hash being tagged
	TagCreated   bool   // false when the tag already existed at Commit
	MajorFloated bool   // true once the major tag push succeeded
}
