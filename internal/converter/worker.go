package converter

// Result is the single completion value of a conversion started with Start.
// It carries either a success (Err nil) or a failure.
type Result struct {
	InputPath  string
	OutputPath string
	Pages      int
	Err        error
}

// Start runs the conversion on its own goroutine and returns a one-shot
// channel carrying exactly one Result. The channel is buffered so the worker
// never blocks on delivery, and it is closed after the Result is sent.
//
// Only one conversion may be in flight per Converter; a second Start while
// one is running returns ErrConversionInFlight.
func (c *Converter) Start(inputPath, outputPath string) (<-chan Result, error) {
	if !c.running.CompareAndSwap(false, true) {
		return nil, ErrConversionInFlight
	}

	if outputPath == "" {
		outputPath = DeriveOutputPath(inputPath)
	}

	results := make(chan Result, 1)
	go func() {
		pages, err := c.Convert(inputPath, outputPath)

		// Release the guard before delivery so a caller that has observed
		// the result can immediately start another conversion.
		c.running.Store(false)

		results <- Result{
			InputPath:  inputPath,
			OutputPath: outputPath,
			Pages:      pages,
			Err:        err,
		}
		close(results)
	}()

	return results, nil
}
