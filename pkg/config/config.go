package config

// this holds the resolved configuration values from CLI
var (
	Sections       int   // procedural sections between the opening and closing straights
	Seed           int64 // track seed, 0 picks one from the clock
	DrawDistance   int   // segments drawn ahead in the main view
	MirrorDistance int   // segments drawn behind in each mirror
	ScreenWidth    int   // logical screen width
	ScreenHeight   int   // logical screen height
	Debug          bool  // development logging

	// simulate only
	Ticks    int     // number of ticks to run
	Speed    float64 // constant rider speed, units per second
	Lane     float64 // rider lateral position in road widths
	TickRate int     // ticks per second
)
