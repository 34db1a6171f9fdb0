package ui

import (
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/jyane/nesbus/nes"
)

// clearScreen fills the window with the PPU's backdrop color.
func clearScreen(console *nes.Console) error {
	c, err := console.Backdrop()
	if err != nil {
		return err
	}
	gl.ClearColor(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	return nil
}

func mainLoop(window *glfw.Window, console *nes.Console) {
	var last [8]bool
	// Here will be executed (almost) 60 times per second.
	for range time.Tick(time.Second / 60) {
		glfw.PollEvents()
		keys := getKeys(window)
		if err := applyKeys(last, keys, console.Press, console.Release); err != nil {
			glog.Fatalln("Failed to update the controller: ", err)
		}
		last = keys
		if err := clearScreen(console); err != nil {
			glog.Fatalln("Failed to read the backdrop: ", err)
		}
		window.SwapBuffers()
		if window.ShouldClose() {
			return
		}
	}
}

// Start is the main entrypoint.
func Start(console *nes.Console, width int, height int) {
	err := glfw.Init()
	if err != nil {
		glog.Fatalln(err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	window, err := glfw.CreateWindow(width, height, "NESBUS", nil, nil)
	if err != nil {
		glog.Fatalln(err)
	}
	defer window.Destroy()
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glog.Fatalln(err)
	}
	glog.Infof("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))
	mainLoop(window, console)
}
