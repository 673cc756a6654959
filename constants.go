package main

type Mode int

const (
	ModeInput Mode = iota
	ModeFileInput
	ModeConfirm
)

type Field int

const (
	FieldStart Field = iota
	FieldEnd
)

type FileOperation int

const (
	FileOpSavePNG FileOperation = iota
	FileOpSaveItinerary
)

type ConfirmAction int

const (
	ConfirmReset ConfirmAction = iota
	ConfirmQuit
	ConfirmOverwriteFile
)

const (
	slotWidth      = 14 // columns per station in the track strip
	defaultPNGName = "trip.png"
	defaultTxtName = "trip.txt"

	// minContainerHeight keeps the baseline (half the surface height) below the
	// highest stacked station and its label.
	minContainerHeight = 480.0
)
