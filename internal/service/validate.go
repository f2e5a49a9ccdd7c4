package service

import (
	"errors"

	"github.com/LeonardoLujan/gamified-savings-app/internal/model"
)

const (
	minPassLen      = 4
	maxPassLen      = 64
	minStudentIDLen = 3
	maxStudentIDLen = 64
)

func validateLoginDTO(input model.LoginDTO) error {
	if err := validateStudentID(input.StudentID); err != nil {
		return err
	}

	if err := validatePassword(input.Password); err != nil {
		return err
	}

	return nil
}

func validateStudentID(studentID string) error {
	if len(studentID) < minStudentIDLen || len(studentID) > maxStudentIDLen {
		return errors.New(model.ErrInvalidIDOrPasswordMessage)
	}

	return nil
}

func validatePassword(password string) error {
	if len(password) < minPassLen || len(password) > maxPassLen {
		return errors.New(model.ErrInvalidIDOrPasswordMessage)
	}

	return nil
}
