package entity

const StoryPlaceholder = "https://via.placeholder.com/100"

type Story struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Title      string `json:"title"`
	Class      int    `json:"class"`
	Position   string `json:"position"`
	ProfilePic string `json:"profilePic"`
	Summary    string `json:"summary"`
	FullStory  string `json:"fullStory"`
}

func (s Story) DisplayTitle() string {
	if s.Title == "" {
		return "Untitled Story"
	}
	return s.Title
}

func (s Story) Picture() string {
	if s.ProfilePic == "" {
		return StoryPlaceholder
	}
	return s.ProfilePic
}

// Body is the markdown source of the full story, or a stand-in line.
func (s Story) Body() string {
	if s.FullStory == "" {
		return "No story available."
	}
	return s.FullStory
}
