package model

// FetchStatus represents the stage of a fetch cycle
type FetchStatus string

const (
	// FetchStatusPending means the cycle is created but not started
	FetchStatusPending FetchStatus = "Pending"

	// FetchStatusFetchingTitle means the random title request is in flight
	FetchStatusFetchingTitle FetchStatus = "FetchingTitle"

	// FetchStatusFetchingArticle means the article content request is in flight
	FetchStatusFetchingArticle FetchStatus = "FetchingArticle"

	// FetchStatusCompleted means the article was fetched and formatted
	FetchStatusCompleted FetchStatus = "Completed"

	// FetchStatusError means one of the requests failed
	FetchStatusError FetchStatus = "Error"

	// FetchStatusSuperseded means a newer cycle was started before this one finished
	FetchStatusSuperseded FetchStatus = "Superseded"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsActive returns true if a request of the cycle is in flight
func (fs FetchStatus) IsActive() bool {
	return fs == FetchStatusFetchingTitle || fs == FetchStatusFetchingArticle
}

// IsFinished returns true if the cycle reached a terminal state
func (fs FetchStatus) IsFinished() bool {
	return fs == FetchStatusCompleted || fs == FetchStatusError || fs == FetchStatusSuperseded
}

// FetchStage identifies which step of a cycle produced an error
type FetchStage string

const (
	StageNone    FetchStage = ""
	StageTitle   FetchStage = "title"
	StageArticle FetchStage = "article"
	StageFormat  FetchStage = "format"
)
