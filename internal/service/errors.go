package service

import "errors"

var (
	// ErrNotFound — голос подан или снят по несуществующему инциденту
	ErrNotFound = errors.New("incident not found")

	// ErrInvalidLocation — координаты не конечны или вне допустимого диапазона;
	// запрос отклоняется до записи, без молчаливого ограничения значений
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInvalidVoteValue — значение голоса не равно +1 или -1
	ErrInvalidVoteValue = errors.New("invalid vote value")
)
