package render

import (
	"github.com/lixenwraith/paddleball/constant"
	"github.com/lixenwraith/paddleball/core"
	"github.com/lixenwraith/paddleball/system"
)

// BulletSource yields live bullets in slot order
type BulletSource interface {
	ForEachActive(fn func(system.Bullet))
}

// Scene holds the fixed draw colors and bullet sprite size
type Scene struct {
	Background core.RGB
	Paddle     core.RGB
	Bullet     core.RGB

	BulletWidth, BulletHeight int
}

// DefaultScene returns the stock colors and sprite size
func DefaultScene() Scene {
	return Scene{
		Background:   constant.RGBBackground,
		Paddle:       constant.RGBPaddle,
		Bullet:       constant.RGBBullet,
		BulletWidth:  constant.BulletWidth,
		BulletHeight: constant.BulletHeight,
	}
}

// Draw issues one frame: clear, ball, paddle, bullets, present
func (s Scene) Draw(c Canvas, ball core.Ball, ballColor core.RGB, paddle core.Paddle, bullets BulletSource) {
	c.SetColor(s.Background)
	c.Clear()

	c.SetColor(ballColor)
	DrawDisk(c, ball.X, ball.Y, ball.Radius)

	c.SetColor(s.Paddle)
	c.FillRect(paddle.Rect())

	c.SetColor(s.Bullet)
	bullets.ForEachActive(func(b system.Bullet) {
		c.FillRect(s.BulletRect(b))
	})

	c.Present()
}

// BulletRect is the sprite rectangle centered horizontally on the bullet
func (s Scene) BulletRect(b system.Bullet) core.Rect {
	return core.Rect{
		X: b.X - s.BulletWidth/2,
		Y: b.Y - s.BulletHeight/2,
		W: s.BulletWidth,
		H: s.BulletHeight,
	}
}

// DrawDisk plots every point within r of (cx, cy) over the 2r x 2r box
// Offsets run over (-r, r] on both axes
func DrawDisk(c Canvas, cx, cy, r int) {
	for w := 0; w < r*2; w++ {
		for h := 0; h < r*2; h++ {
			dx := r - w
			dy := r - h
			if dx*dx+dy*dy <= r*r {
				c.DrawPoint(cx+dx, cy+dy)
			}
		}
	}
}
