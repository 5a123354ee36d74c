/*
Package repeat provides a guarded periodic task: a goroutine that invokes
an action at a fixed interval until the action stops it, an error or panic
ends it, or the guard is stopped.

	g := repeat.Every(time.Second, repeat.Run(heartbeat))
	defer g.Close()

	// later, surface any error the action ended with
	if err := g.Stop(); err != nil {
		log.Printf("heartbeat failed: %v", err)
	}
*/
package repeat
