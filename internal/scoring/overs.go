package scoring

import "fmt"

// BallsPerOver is fixed for every cricket format the site tracks.
const BallsPerOver = 6

// OversFromBalls converts a count of legal deliveries to overs notation,
// where the fractional digit is the ball within the current over: 20 balls
// is 3.2 overs.
func OversFromBalls(balls int) float64 {
	if balls < 0 {
		balls = 0
	}
	return float64(balls/BallsPerOver) + float64(balls%BallsPerOver)/10
}

// FormatOvers renders an overs value as "O.B". The zero value renders "0.0".
func FormatOvers(overs float64) string {
	whole := int(overs)
	ball := int((overs-float64(whole))*10 + 0.5)
	if ball >= BallsPerOver {
		whole++
		ball = 0
	}
	return fmt.Sprintf("%d.%d", whole, ball)
}
