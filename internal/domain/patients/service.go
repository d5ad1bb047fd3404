package patients

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type Input struct {
	FirstName string
	LastName  string
	Age       int
}

func (in Input) normalize() (Input, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)

	if in.FirstName == "" || in.LastName == "" {
		return Input{}, ErrInvalidInput
	}
	if utf8.RuneCountInString(in.FirstName) > NameMaxLength || utf8.RuneCountInString(in.LastName) > NameMaxLength {
		return Input{}, ErrInvalidInput
	}
	return in, nil
}

func (s *Service) Create(ctx context.Context, in Input) (Patient, error) {
	in, err := in.normalize()
	if err != nil {
		return Patient{}, err
	}

	return s.repo.Create(ctx, Patient{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Age:       in.Age,
	})
}

func (s *Service) Update(ctx context.Context, id int64, in Input) (Patient, error) {
	in, err := in.normalize()
	if err != nil {
		return Patient{}, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return Patient{}, err
	}

	p.FirstName = in.FirstName
	p.LastName = in.LastName
	p.Age = in.Age

	if err := s.repo.Update(ctx, p); err != nil {
		return Patient{}, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (Patient, error) {
	if id <= 0 {
		return Patient{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Patient, error) {
	return s.repo.List(ctx)
}

// Delete borra el paciente junto con sus datos clínicos.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}
