package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/routetree/pkg/routetree/route"
	"github.com/BrandonKowalski/routetree/pkg/routetree/router"
)

// Tab keys - use typed constants so typos fail to compile
const (
	DevicesTab  route.Key = "devices"
	SettingsTab route.Key = "settings"
)

func exampleRoutes() *route.DefNode {
	return &route.DefNode{
		DefaultSelected: DevicesTab,
		Container:       "TabBar",
		Children: map[route.Key]route.Child{
			DevicesTab: route.Node(&route.DefNode{
				Component:    "DeviceList",
				InitialState: route.Values{"showingRevoked": false},
				Children: map[route.Key]route.Child{
					"devicePage": route.Node(&route.DefNode{Component: "DevicePage"}),
				},
			}),
			SettingsTab: route.Node(&route.DefNode{
				Component: "Settings",
				Tags:      route.Values{route.TagModal: true},
			}),
		},
	}
}

// Example demonstrates tab switching that keeps each tab's subpath.
func Example() {
	r, err := router.New(exampleRoutes(), nil)
	if err != nil {
		fmt.Println(err)
		return
	}

	r.OnTransition(func(t router.Transition) {
		fmt.Printf("%s -> %s\n", t.From.Path(), t.To.Path())
	})

	// Open a device, passing the device id as props
	_ = r.Dispatch(router.NavigateAppend(route.Select("devicePage", route.Values{"id": "d-42"})))

	// Switch tabs and come back; the device page is still open
	_ = r.Dispatch(router.SwitchTo(route.Keys(SettingsTab)...))
	_ = r.Dispatch(router.SwitchTo(route.Keys(DevicesTab)...))

	view, _ := r.View()
	fmt.Println("props:", view.Leaf().Props["id"])

	// Output:
	// /devices -> /devices/devicePage
	// /devices/devicePage -> /settings
	// /settings -> /devices/devicePage
	// props: d-42
}

// Example_rejected demonstrates that an action producing an invalid tree is discarded.
func Example_rejected() {
	r, _ := router.New(exampleRoutes(), nil)

	err := r.Dispatch(router.NavigateTo(route.Keys(DevicesTab, "missing")...))
	fmt.Println("invalid route:", route.IsInvalidRoute(err))
	fmt.Println("still at:", r.Path())

	_ = r.Dispatch(router.NavigateTo(route.Keys(SettingsTab)...))
	view, _ := r.View()
	fmt.Println("modal:", view.Modal())

	_ = r.Dispatch(router.NavigateUp())
	fmt.Println("after up:", r.Path())

	// Output:
	// invalid route: true
	// still at: /devices
	// modal: true
	// after up: /settings
}
