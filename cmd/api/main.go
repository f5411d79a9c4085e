package main

// @title Bookshelf API
// @version 1.0
// @description Book pages with per-session recommendations and keyword search.

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8000
// @BasePath /
// @schemes http
import (
	_ "bookshelf/docs"
	protocol "bookshelf/protocal"

	"github.com/sirupsen/logrus"
)

func main() {
	err := protocol.ServeHTTP()
	if err != nil {
		logrus.Fatalln(err)
	}
}
