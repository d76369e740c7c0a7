package game

// gallows holds one drawing per number of lives left, indexed by lives.
var gallows = [MaxLives + 1]string{
	0: `  ┌─────┐
  │     │
 ┌┴┐    │
 └┬┘    │
──┼──   │
  │     │
 / \    │
        │
   ─────┴─────`,
	1: `  ┌─────┐
  │     │
 ┌┴┐    │
 └┬┘    │
──┼──   │
  │     │
 /      │
        │
   ─────┴─────`,
	2: `  ┌─────┐
  │     │
 ┌┴┐    │
 └┬┘    │
──┼──   │
  │     │
        │
        │
   ─────┴─────`,
	3: `  ┌─────┐
  │     │
 ┌┴┐    │
 └┬┘    │
──┼     │
  │     │
        │
        │
   ─────┴─────`,
	4: `  ┌─────┐
  │     │
 ┌┴┐    │
 └┬┘    │
  ┼     │
  │     │
        │
        │
   ─────┴─────`,
	5: `  ┌─────┐
  │     │
 ┌┴┐    │
 └┬┘    │
        │
        │
        │
        │
   ─────┴─────`,
	6: `  ┌─────┐
  │     │
        │
        │
        │
        │
        │
        │
   ─────┴─────`,
}

// Gallows returns the drawing for the given number of lives.  Values
// outside 0..MaxLives cannot occur in a running game and yield "".
func Gallows(lives int) string {
	if lives < 0 || lives > MaxLives {
		return ""
	}
	return gallows[lives]
}
