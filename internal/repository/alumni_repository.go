package repository

import "alumni/internal/entity"

type AlumniRepository struct {
	alumni []entity.Alumnus
}

func NewAlumniRepository() (*AlumniRepository, error) {
	var alumni []entity.Alumnus
	if err := load("alumni.json5", &alumni); err != nil {
		return nil, err
	}
	return &AlumniRepository{alumni: alumni}, nil
}

func (r *AlumniRepository) GetAll() []entity.Alumnus {
	return append([]entity.Alumnus(nil), r.alumni...)
}
