package ops

import (
	"context"
	"testing"

	"agnoctl/internal/config"
	"agnoctl/pkg/types"
)

// withStubs snapshots the fn* indirection vars, applies the given
// overrides, and returns a restore func for deferring.
func withStubs(t *testing.T, set func()) func() {
	t.Helper()
	savedDetectGPU := fnDetectGPU
	savedCompose := fnCompose
	savedStackUp := fnStackUp
	savedStackDown := fnStackDown
	savedStackRestart := fnStackRestart
	savedModelsSync := fnModelsSync
	savedModelsList := fnModelsList
	savedInitDB := fnInitDB
	savedDBShell := fnDBShell
	savedListTables := fnListTables
	savedRunStatus := fnRunStatus
	savedValidate := fnValidate
	savedCheckAPI := fnCheckAPI
	savedCheckDB := fnCheckDB
	savedCheckOllama := fnCheckOllama
	savedGenDeployGuide := fnGenDeployGuide
	savedGenBaseline := fnGenBaseline
	savedServe := fnServe
	set()
	return func() {
		fnDetectGPU = savedDetectGPU
		fnCompose = savedCompose
		fnStackUp = savedStackUp
		fnStackDown = savedStackDown
		fnStackRestart = savedStackRestart
		fnModelsSync = savedModelsSync
		fnModelsList = savedModelsList
		fnInitDB = savedInitDB
		fnDBShell = savedDBShell
		fnListTables = savedListTables
		fnRunStatus = savedRunStatus
		fnValidate = savedValidate
		fnCheckAPI = savedCheckAPI
		fnCheckDB = savedCheckDB
		fnCheckOllama = savedCheckOllama
		fnGenDeployGuide = savedGenDeployGuide
		fnGenBaseline = savedGenBaseline
		fnServe = savedServe
	}
}

func passCheck(service string) func(context.Context, string) types.CheckResult {
	return func(context.Context, string) types.CheckResult {
		return types.CheckResult{Service: service, OK: true}
	}
}

func passDBCheck() func(context.Context, config.DB) types.CheckResult {
	return func(context.Context, config.DB) types.CheckResult {
		return types.CheckResult{Service: "database", OK: true}
	}
}
