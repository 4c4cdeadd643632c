package timing

import (
	"time"
)

var (
	frameStartTime time.Time

	dt float32

	// Seconds elapsed and frames rendered since the last FPS window reset
	elapsed    float32
	frameCount uint32
	avgFps     float32
)

func Init() {
	frameStartTime = time.Now()
	dt = 1.0 / 60
	avgFps = 60
}

func FrameStarted() {
	frameStartTime = time.Now()
}

func FrameEnded() {

	dt = float32(time.Since(frameStartTime).Seconds())

	elapsed += dt
	frameCount++

	// Recompute the average over ~quarter second windows so the value is readable
	if elapsed >= 0.25 {
		avgFps = float32(frameCount) / elapsed
		elapsed = 0
		frameCount = 0
	}
}

// DT returns the duration of the last frame in seconds
func DT() float32 {
	return dt
}

func GetAvgFPS() float32 {
	return avgFps
}
