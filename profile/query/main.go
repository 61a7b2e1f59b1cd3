// Profiling:
// go build ./profile/query
// go tool pprof -http=":8000" -nodefraction=0.001 ./query cpu.pprof

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

type comp3 struct {
	V int64
	W int64
}

type comp4 struct {
	V int64
	W int64
}

type comp5 struct {
	V int64
	W int64
}

type comp6 struct {
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
	stabby.RequireComponent[comp3](&s.BaseSystem)
	stabby.RequireComponent[comp4](&s.BaseSystem)
	stabby.RequireComponent[comp5](&s.BaseSystem)
	stabby.RequireComponent[comp6](&s.BaseSystem)
	return s
}

func main() {
	count := 10
	iters := 1000
	entities := 100000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(count, iters, entities)
	p.Stop()
}

func run(rounds, iters, numEntities int) {
	for range rounds {
		r := stabby.NewRegistry(stabby.WithPoolCapacity(numEntities))
		sys := stabby.AddSystem(r, newSumSystem())
		for range numEntities {
			e := r.CreateEntity()
			stabby.AddComponent(r, e, comp1{})
			stabby.AddComponent(r, e, comp2{V: 1, W: 1})
			stabby.AddComponent(r, e, comp3{})
			stabby.AddComponent(r, e, comp4{})
			stabby.AddComponent(r, e, comp5{})
			stabby.AddComponent(r, e, comp6{})
		}
		r.Update()

		c1 := stabby.ComponentPool[comp1](r)
		c2 := stabby.ComponentPool[comp2](r)
		entities := sys.GetEntities()
		for range iters {
			for _, e := range entities {
				a, b := c1.Get(e.ID), c2.Get(e.ID)
				a.V += b.V
				a.W += b.W
			}
		}
	}
}
