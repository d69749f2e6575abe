package tui

// tagsLoadedMsg delivers the workspace tag scan result.
type tagsLoadedMsg struct {
	tags []string
}

// fileWrittenMsg reports one generated file, in emission order. It
// carries the channels needed to keep listening for the next file.
type fileWrittenMsg struct {
	path  string
	files <-chan string
	done  <-chan genOutcome
}

// genDoneMsg signals generation finished successfully.
type genDoneMsg struct{}

// genFailMsg signals generation failed.
type genFailMsg struct {
	err error
}

// genOutcome is the terminal result of one generation run.
type genOutcome struct {
	err error
}
