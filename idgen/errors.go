package idgen

import "errors"

var errCollisions = errors.New("every generated id was already taken")
