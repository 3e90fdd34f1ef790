package main

import (
	"runtime"

	"cubetest/cmd"
)

func init() {
	// GLFW and the GL context must stay on the main thread
	runtime.LockOSThread()
}

func main() {
	cmd.Execute()
}
