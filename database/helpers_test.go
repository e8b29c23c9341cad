package database

import (
	"errors"
	"fmt"
)

// seqIDs hands out ids from a fixed list, honouring the exists callback the
// way the real generator does.
type seqIDs struct {
	ids  []string
	next int
}

func (s *seqIDs) GenerateUnique(exists func(id string) (bool, error), attempts int) (string, error) {
	for s.next < len(s.ids) {
		id := s.ids[s.next]
		s.next++
		taken, err := exists(id)
		if err != nil {
			return "", err
		}
		if !taken {
			return id, nil
		}
	}
	return "", fmt.Errorf("ids exhausted")
}

type failingIDs struct{}

func (failingIDs) GenerateUnique(func(string) (bool, error), int) (string, error) {
	return "", errors.New("no entropy")
}
