package youtube

import "errors"

// Kind classifies why a pasted string could not become a grid entry.
type Kind int

const (
	InvalidURL Kind = iota + 1
	NoLiveVideo
	NotLive
	Duplicate
	Empty
)

func (k Kind) String() string {
	switch k {
	case InvalidURL:
		return "invalid url"
	case NoLiveVideo:
		return "no live video"
	case NotLive:
		return "not live"
	case Duplicate:
		return "duplicate"
	case Empty:
		return "empty"
	default:
		return "unknown"
	}
}

var (
	ErrInvalidURL  = &ResolutionError{Kind: InvalidURL}
	ErrNoLiveVideo = &ResolutionError{Kind: NoLiveVideo}
	ErrNotLive     = &ResolutionError{Kind: NotLive}
	ErrDuplicate   = &ResolutionError{Kind: Duplicate}
	ErrEmpty       = &ResolutionError{Kind: Empty}
)

// ResolutionError is returned when raw input is rejected. Compare with errors.Is
// against the Err* values; only Kind takes part in the comparison.
type ResolutionError struct {
	Kind  Kind
	Input string
}

func (e *ResolutionError) Error() string {
	return e.Kind.String() + ": " + e.Message()
}

// Message is the text shown to the user.
func (e *ResolutionError) Message() string {
	switch e.Kind {
	case Empty:
		return "Please enter a URL"
	case InvalidURL:
		return "Invalid YouTube URL. Examples:\n" +
			"• https://www.youtube.com/watch?v=VIDEO_ID\n" +
			"• https://youtu.be/VIDEO_ID\n" +
			"• https://www.youtube.com/shorts/VIDEO_ID\n" +
			"• https://www.youtube.com/channel/UC.../live"
	case NoLiveVideo:
		return "This channel is not live right now."
	case NotLive:
		return "This is not a live stream. Please add a live URL."
	case Duplicate:
		return "This video is already added to the grid."
	default:
		return "Unknown error"
	}
}

func (e *ResolutionError) Is(target error) bool {
	var t *ResolutionError
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Message extracts the user-facing text from any error.
func Message(err error) string {
	var re *ResolutionError
	if errors.As(err, &re) {
		return re.Message()
	}
	return err.Error()
}

func reject(kind Kind, input string) error {
	return &ResolutionError{Kind: kind, Input: input}
}
