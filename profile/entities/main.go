// Profiling:
// go build ./profile/entities
// go tool pprof -http=":8000" -nodefraction=0.001 ./entities mem.pprof

package main

import (
	"github.com/edwinsyarief/stabby"
	"github.com/pkg/profile"
)

type comp1 struct {
	V int64
	W int64
}

type comp2 struct {
	V int64
	W int64
}

type sumSystem struct {
	stabby.BaseSystem
}

func newSumSystem() *sumSystem {
	s := &sumSystem{}
	stabby.RequireComponent[comp1](&s.BaseSystem)
	stabby.RequireComponent[comp2](&s.BaseSystem)
	return s
}

func main() {
	count := 20
	iters := 1000
	entities := 1000
	p := profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

// run creates, iterates and kills numEntities entities per iteration, so every
// frame goes through the deferred add and kill paths.
func run(rounds, iters, numEntities int) {
	for range rounds {
		r := stabby.NewRegistry(stabby.WithPoolCapacity(numEntities))
		sys := stabby.AddSystem(r, newSumSystem())

		for range iters {
			for range numEntities {
				e := r.CreateEntity()
				stabby.AddComponent(r, e, comp1{V: 1})
				stabby.AddComponent(r, e, comp2{V: 1, W: 2})
			}
			r.Update()

			c1 := stabby.ComponentPool[comp1](r)
			c2 := stabby.ComponentPool[comp2](r)
			for _, e := range sys.GetEntities() {
				a, b := c1.Get(e.ID), c2.Get(e.ID)
				a.V += b.V
				a.W += b.W
				r.KillEntity(e)
			}
			r.Update()
		}
	}
}
