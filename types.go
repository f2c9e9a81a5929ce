package main

type model struct {
	width          int
	height         int
	scene          *Scene
	config         *Config
	keys           KeyMap
	help           bool
	terminal       *terminalSink
	snapshot       *pngSink
	clip           *clipboardSink
	errorMessage   string
	successMessage string
}
