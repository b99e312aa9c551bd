package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/tmather/ticklist/internal/testsupport"
)

func TestCLIScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
		Cmds: map[string]func(ts *testscript.TestScript, neg bool, args []string){
			"todoid": testsupport.CmdTodoID,
		},
	})
}
