package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	g.setScene(s)
	s.GameObjects = append(s.GameObjects, g)
}

// RemoveGameObject detaches g, and with it its children, from the scene.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			g.setScene(nil)
			return
		}
	}
	if g.Parent != nil && g.Scene == s {
		g.Parent.RemoveChild(g)
	}
}

// Traverse walks every root object and its descendants depth-first.
func (s *Scene) Traverse(fn func(*GameObject) bool) {
	for _, g := range s.GameObjects {
		g.Traverse(fn)
	}
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	for _, g := range s.GameObjects {
		g.Update(deltaTime)
	}
}
