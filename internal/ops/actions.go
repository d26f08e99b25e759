package ops

// Indirection layer to allow stubbing in tests

var (
	fnDetectGPU = detectGPU
	fnCompose   = composeCmd

	fnStackUp      = stackUp
	fnStackDown    = stackDown
	fnStackRestart = stackRestart

	fnModelsSync = modelsSync
	fnModelsList = modelsList

	fnInitDB     = initDB
	fnDBShell    = dbShell
	fnListTables = listTables

	fnRunStatus = runStatus
	fnValidate  = validateStack

	fnCheckAPI    = checkAPI
	fnCheckDB     = checkDB
	fnCheckOllama = checkOllama

	fnGenDeployGuide = genDeployGuide
	fnGenBaseline    = genBaseline

	fnServe = serve
)
