package main

import (
	"flag"
	"log"
	"runtime"

	"orbitcam/internal/config"
	"orbitcam/internal/game"
	"orbitcam/internal/input"
	"orbitcam/internal/scene"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "camera config file (YAML)")
	scenePath := flag.String("scene", "", "scene file (YAML); the built-in house is used when empty")
	watch := flag.Bool("watch", false, "reload the config file when it changes")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("orbitcam: %v", err)
		}
		if *watch {
			w, err := config.Watch(*configPath)
			if err != nil {
				log.Fatalf("orbitcam: watch %s: %v", *configPath, err)
			}
			closer.Bind(func() {
				if err := w.Close(); err != nil {
					log.Printf("orbitcam: close watcher: %v", err)
				}
			})
		}
	}

	sc := scene.Default()
	if *scenePath != "" {
		var err error
		if sc, err = scene.Load(*scenePath); err != nil {
			log.Fatalf("orbitcam: %v", err)
		}
	}

	session, err := game.NewSession(sc)
	if err != nil {
		panic(err)
	}

	if err := glfw.Init(); err != nil {
		panic(err)
	}

	window, err := game.SetupWindow("orbitcam - " + sc.Name)
	if err != nil {
		glfw.Terminate()
		panic(err)
	}

	im := input.NewInputManager()
	im.Attach(window)

	app, err := game.NewApp(window, im, session)
	if err != nil {
		glfw.Terminate()
		panic(err)
	}

	log.Printf("orbitcam: scene %q with %d colliders", sc.Name, session.World.Len())
	app.Run()

	// GL teardown must stay on the locked main thread
	app.Close()
	glfw.Terminate()
	closer.Close()
}
