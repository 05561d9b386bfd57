package main

import (
	"go.uber.org/fx"

	"github.com/jingsu322/fake-rfq-api/internal/app"
)

func main() {
	fx.New(app.Module).Run()
}
