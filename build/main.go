package main

import (
	"os"
	"os/exec"

	"github.com/goyek/goyek/v2"
)

func goCmd(a *goyek.A, args ...string) {
	a.Logf("go %v", args)
	cmd := exec.CommandContext(a.Context(), "go", args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		a.Error(err)
	}
}

var vet = goyek.Define(goyek.Task{
	Name:  "vet",
	Usage: "Run go vet on all packages",
	Action: func(a *goyek.A) {
		goCmd(a, "vet", "./...")
	},
})

var test = goyek.Define(goyek.Task{
	Name:  "test",
	Usage: "Run unit tests (subprocess tests skipped)",
	Deps:  goyek.Deps{vet},
	Action: func(a *goyek.A) {
		goCmd(a, "test", "-short", "./...")
	},
})

var integration = goyek.Define(goyek.Task{
	Name:  "integration",
	Usage: "Run all tests including benchmark subprocess tests",
	Deps:  goyek.Deps{vet},
	Action: func(a *goyek.A) {
		goCmd(a, "test", "-race", "./...")
	},
})

var bench = goyek.Define(goyek.Task{
	Name:  "bench",
	Usage: "Benchmark every version of 2025 day 1 part 1",
	Action: func(a *goyek.A) {
		goCmd(a, "run", "./cmd/aocbench", "--year", "2025", "--day", "1", "--part", "1")
	},
})

func main() {
	goyek.SetDefault(test)
	goyek.Main(os.Args[1:])
}
