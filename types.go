package main

import "tripline/diagram"

type model struct {
	width          int
	height         int
	mode           Mode
	help           bool
	field          Field
	inputs         [2]string
	cursorPos      [2]int
	fileOp         FileOperation
	filename       string
	confirmAction  ConfirmAction
	errorMessage   string
	successMessage string
	config         *Config
	ctrl           *diagram.Controller
	host           *termHost
}
