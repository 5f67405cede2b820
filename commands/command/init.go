package command

import "github.com/PasqualeAiello/io-app/registry"

func init() {
	registry.Register(Activate{})
	registry.Register(Cancel{})
	registry.Register(Continue{})
	registry.Register(Status{})
	registry.Register(Help{})
}
