package config

import "github.com/thirukguru/mylib-demo/model"

type service struct {
	readFile func(string) ([]byte, error)
}

// Service is the interface for loading demo configuration.
type Service interface {
	Load(path string) (model.Config, error)
}
