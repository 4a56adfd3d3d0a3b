package types

// ViewType discriminates the current view union.
type ViewType string

const (
	ViewHome   ViewType = "home"
	ViewSubmit ViewType = "submit"
	ViewStory  ViewType = "story"
)

// View is the single transient navigation state. StoryID is set only for
// ViewStory and may reference an id that no longer resolves; consumers fall
// back to home in that case rather than erroring.
type View struct {
	Type    ViewType `json:"type"`
	StoryID string   `json:"story_id,omitempty"`
}

func HomeView() View           { return View{Type: ViewHome} }
func SubmitView() View         { return View{Type: ViewSubmit} }
func StoryView(id string) View { return View{Type: ViewStory, StoryID: id} }

func (v View) Valid() bool {
	switch v.Type {
	case ViewHome, ViewSubmit:
		return v.StoryID == ""
	case ViewStory:
		return v.StoryID != ""
	}
	return false
}
