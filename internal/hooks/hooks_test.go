package hooks

import "testing"

func TestFireRunsHandlersInRegistrationOrder(t *testing.T) {
	d := NewDispatcher()
	var order []int
	d.Register(PageReady, func(Context) { order = append(order, 1) })
	d.Register(PageReady, func(Context) { order = append(order, 2) })
	d.Register(ContentSwap, func(Context) { order = append(order, 99) })

	d.Fire(PageReady, Context{Path: "/"})

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("order = %v, want [1 2]", order)
	}
}

func TestFireWithNoHandlersIsNoop(t *testing.T) {
	d := NewDispatcher()
	d.Fire(ResponseFailure, Context{Path: "/x", Status: 500})
}

func TestContextReachesHandler(t *testing.T) {
	d := NewDispatcher()
	var got Context
	d.Register(ResponseFailure, func(c Context) { got = c })

	want := Context{Path: "/admin/export", RequestID: "req-1", Status: 502, Partial: true}
	d.Fire(ResponseFailure, want)

	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestRegisterNilHandlerIgnored(t *testing.T) {
	d := NewDispatcher()
	d.Register(PageReady, nil)
	d.Fire(PageReady, Context{})
}
