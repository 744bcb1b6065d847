package object

// Widget is a pickup dropped by a destroyed ship. Touching it applies the
// kind's effect to the player and awards WidgetScore.
type Widget struct {
	Entity
}

// widgetEffects maps each pickup kind to what it does for the player.
var widgetEffects = map[Kind]func(p *Player){
	KindHealthWidget: func(p *Player) {
		p.Health = min(p.Health+HealthWidgetHeal, PlayerMaxHealth)
	},
	KindUpgradeWidget: func(p *Player) {
		p.Upgrade++
	},
	KindMeteorWidget: func(p *Player) {
		p.Meteors++
	},
}

func newWidget(x, y int, kind Kind, image ImageID) *Widget {
	return &Widget{
		Entity: Entity{
			X:      x,
			Y:      y,
			Layer:  WidgetLayer,
			Size:   WidgetSize,
			Kind:   kind,
			Image:  image,
			Health: 1,
			Speed:  WidgetStep,
			Score:  WidgetScore,
		},
	}
}

func NewHealthWidget(x, y int) *Widget {
	return newWidget(x, y, KindHealthWidget, ImageHealthGoodie)
}

func NewUpgradeWidget(x, y int) *Widget {
	return newWidget(x, y, KindUpgradeWidget, ImagePowerupGoodie)
}

func NewMeteorWidget(x, y int) *Widget {
	return newWidget(x, y, KindMeteorWidget, ImageMeteorGoodie)
}

func (w *Widget) Update(ctx UpdateContext) {
	if w.IsDead() {
		return
	}

	if w.Y < 0 {
		w.SetDead()
		return
	}

	if w.collect(ctx) {
		return
	}

	w.MoveTo(w.X, w.Y-WidgetStep)

	w.collect(ctx)
}

func (w *Widget) collect(ctx UpdateContext) bool {
	player := ctx.World.Player()
	if player == nil || !w.Collides(&player.Entity) {
		return false
	}
	if effect, ok := widgetEffects[w.Kind]; ok {
		effect(player)
	}
	ctx.World.AddScore(w.Score)
	w.SetDead()
	return true
}
