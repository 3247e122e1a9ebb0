package main

import (
	"os"

	"github.com/aurceive/genshin-dashboard/internal/app"
)

func main() {
	os.Exit(app.Run())
}
