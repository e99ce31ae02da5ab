// Command toysql is a single-line command shell over an in-memory table catalog.
package main

import (
	"os"

	"github.com/zhangbiao2009/simple-sql-catalog/pkg/cli"
)

func main() {
	os.Exit(cli.Execute())
}
