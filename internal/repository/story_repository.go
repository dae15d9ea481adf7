package repository

import "alumni/internal/entity"

type StoryRepository struct {
	stories []entity.Story
}

func NewStoryRepository() (*StoryRepository, error) {
	var stories []entity.Story
	if err := load("stories.json5", &stories); err != nil {
		return nil, err
	}
	return &StoryRepository{stories: stories}, nil
}

func (r *StoryRepository) GetAll() []entity.Story {
	return append([]entity.Story(nil), r.stories...)
}

func (r *StoryRepository) GetByID(id string) (entity.Story, error) {
	for _, s := range r.stories {
		if s.ID == id {
			return s, nil
		}
	}
	return entity.Story{}, &NotFoundError{Kind: "story", ID: id}
}
