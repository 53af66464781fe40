package route

// testTree mirrors a tabbed application: a container root with five tabs,
// a recursive profile screen, and a settings tab that cannot render.
func testTree() *DefNode {
	var profile *DefNode
	profile = &DefNode{
		Component:    "Profile",
		InitialState: Values{"currentFriendshipsTab": "Followers"},
		Children: map[Key]Child{
			"profile": Lazy(func() *DefNode { return profile }),
		},
	}

	devices := &DefNode{
		Component:    "Devices",
		InitialState: Values{"showingRevoked": false},
		Children: map[Key]Child{
			"codePage":    Node(&DefNode{Component: "CodePage"}),
			"genPaperKey": Node(&DefNode{Component: "GenPaperKey", Tags: Values{TagModal: true}}),
			"devicePage": Node(&DefNode{
				Component: "DevicePage",
				Children: map[Key]Child{
					"removeDevice": Node(&DefNode{Component: "RemoveDevice", Tags: Values{TagModal: true}}),
				},
			}),
		},
	}

	folders := &DefNode{
		DefaultSelected: "private",
		Children: map[Key]Child{
			"private": Node(&DefNode{
				Component:    "Folders",
				StaticProps:  Values{"showingPrivate": true},
				InitialState: Values{"showingIgnored": false},
			}),
			"public": Node(&DefNode{
				Component:    "Folders",
				StaticProps:  Values{"showingPrivate": false},
				InitialState: Values{"showingIgnored": false},
			}),
		},
	}

	search := &DefNode{
		Component: "Search",
		Children: map[Key]Child{
			"profile": Node(profile),
		},
	}

	return &DefNode{
		DefaultSelected: "devices",
		Container:       "Nav",
		Children: map[Key]Child{
			"devices":  Node(devices),
			"folders":  Node(folders),
			"profile":  Node(profile),
			"search":   Node(search),
			"settings": Node(&DefNode{}),
		},
	}
}
