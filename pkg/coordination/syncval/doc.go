/*
Package syncval provides a mutex-guarded value with a scoped accessor.

	counters := syncval.New(map[string]int{})

	u := counters.Updater()
	(*u.Ptr())["requests"]++
	u.Release()

	// or the closure form
	counters.Do(func(m *map[string]int) { (*m)["requests"]++ })
*/
package syncval
