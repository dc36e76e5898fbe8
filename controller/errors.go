package controller

import "fmt"

func controllerErrorf(op string, err error) error {
	return fmt.Errorf("controller: %s: %w", op, err)
}
