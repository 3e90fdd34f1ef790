package cmd

import (
	"fmt"
	"log"
	"os"

	"cubetest/internal/config"
	"cubetest/internal/game"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"
	"github.com/xlab/closer"
)

// newRootCmd builds the command tree. The settings it fills from flags are
// owned by the returned command and handed to the app on run.
func newRootCmd() *cobra.Command {
	settings := config.Defaults()
	var vsyncMode *string

	cmd := &cobra.Command{
		Use:   "cubetest",
		Short: "Spinning cube cascade rendered with OpenGL 3.3",
		Long: `Draws a chain of nested, spinning boxes with an in-window settings panel.

W/S pitch, A/D yaw, Left Shift zooms in, Left Control zooms out and
Escape quits. The window opens at two thirds of the primary monitor's
native mode, or fullscreen at the native mode with --fullscreen.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return finishSettings(&settings, *vsyncMode)
		},
		Run: func(cmd *cobra.Command, args []string) {
			run(&settings)
		},
	}
	vsyncMode = addSettingsFlags(cmd, &settings)
	cmd.AddCommand(newVersionCmd())
	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// addSettingsFlags binds the startup settings to flags on c. The returned
// string receives the vsync mode name.
func addSettingsFlags(c *cobra.Command, s *config.Settings) *string {
	f := c.Flags()
	f.BoolVar(&s.Window.Fullscreen, "fullscreen", s.Window.Fullscreen, "start fullscreen on the primary monitor")
	f.BoolVar(&s.Window.VsyncEnabled, "vsync", s.Window.VsyncEnabled, "synchronize buffer swaps with the display")
	mode := f.String("vsync-mode", s.Window.Vsync.String(), "vsync limit: full, half, quarter or sixth")
	f.IntVar(&s.Window.MaxFramerate, "max-fps", s.Window.MaxFramerate,
		fmt.Sprintf("framerate cap with vsync off (%d-%d)", config.MinFramerateCap, config.MaxFramerateCap))
	f.BoolVar(&s.Window.Unlimited, "unlimited", s.Window.Unlimited, "do not cap the framerate with vsync off")

	f.IntVar(&s.Scene.BoxCount, "boxes", s.Scene.BoxCount,
		fmt.Sprintf("number of boxes in the chain (%d-%d)", config.MinBoxCount, config.MaxBoxCount))
	f.Float32Var(&s.Scene.SpinSpeed, "spin-speed", s.Scene.SpinSpeed, "spin speed of the chain")
	f.BoolVar(&s.Scene.OuterWireframe, "outer-wireframe", s.Scene.OuterWireframe, "draw the outer wireframe")
	f.BoolVar(&s.Scene.InnerWireframe, "inner-wireframe", s.Scene.InnerWireframe, "draw the boxes as wireframes")
	f.BoolVar(&s.Scene.RaveShader, "rave", s.Scene.RaveShader, "use the time-animated vertex shader")

	f.StringVar(&s.Assets.ShaderDir, "assets", s.Assets.ShaderDir, "directory holding the cube and ui shaders")
	f.StringVar(&s.Assets.Textures[0], "texture1", s.Assets.Textures[0], "image for texture unit 0 (generated if empty)")
	f.StringVar(&s.Assets.Textures[1], "texture2", s.Assets.Textures[1], "image for texture unit 1 (generated if empty)")
	return mode
}

// finishSettings parses the vsync mode and clamps everything into range.
func finishSettings(s *config.Settings, mode string) error {
	m, err := config.ParseVsyncMode(mode)
	if err != nil {
		return err
	}
	s.Window.Vsync = m
	s.Clamp()
	return nil
}

// run opens the window and drives the demo until it is closed.
func run(settings *config.Settings) {
	log.Println("Initializing...")
	if err := glfw.Init(); err != nil {
		closer.Fatalln("Failed to initialize GLFW:", err)
	}

	window, err := game.SetupWindow(settings.Window)
	if err != nil {
		glfw.Terminate()
		closer.Fatalln("Failed to create window:", err)
	}

	app, err := game.NewApp(window, settings)
	if err != nil {
		window.Destroy()
		glfw.Terminate()
		closer.Fatalln("Failed to initialize renderer:", err)
	}
	log.Printf("Done. %dx%d, %d boxes", settings.Window.Width, settings.Window.Height, settings.Scene.BoxCount)

	// Runs on closer's goroutine, so no GL calls here
	closer.Bind(func() {
		log.Printf("Exiting after %d frames", app.Frames())
	})

	app.Run()

	app.Close()
	window.Destroy()
	glfw.Terminate()
	closer.Close()
}
