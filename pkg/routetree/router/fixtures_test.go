package router

import "github.com/BrandonKowalski/routetree/pkg/routetree/route"

func devicesDef(withCodePage bool) *route.DefNode {
	children := map[route.Key]route.Child{
		"genPaperKey": route.Node(&route.DefNode{Component: "GenPaperKey"}),
		"devicePage":  route.Node(&route.DefNode{Component: "DevicePage"}),
	}
	if withCodePage {
		children["codePage"] = route.Node(&route.DefNode{Component: "CodePage"})
	}
	return &route.DefNode{
		Component:    "Devices",
		InitialState: route.Values{"showingRevoked": false},
		Children:     children,
	}
}

func appDef(withCodePage bool) *route.DefNode {
	return &route.DefNode{
		DefaultSelected: "devices",
		Container:       "Nav",
		Children: map[route.Key]route.Child{
			"devices": route.Node(devicesDef(withCodePage)),
			"folders": route.Node(&route.DefNode{
				DefaultSelected: "private",
				Children: map[route.Key]route.Child{
					"private": route.Node(&route.DefNode{Component: "Folders"}),
					"public":  route.Node(&route.DefNode{Component: "Folders"}),
				},
			}),
			"settings": route.Node(&route.DefNode{}),
		},
	}
}
