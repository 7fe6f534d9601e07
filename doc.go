// Package ctab parses five-field crontab schedule expressions, tests
// timestamps against them and lazily enumerates matching timestamps.
//
// An expression goes through three stages:
//
//   - [Resolve] rewrites wildcards and month/weekday names into numeric
//     ranges ("* * * oct sun" becomes "0-59 0-23 1-31 10 7").
//   - [Parse] turns the numeric text into a [Spec], five sets of integers.
//   - [Spec.Matches] and [Spec.Iterate] evaluate the Spec against time.
//
// Basic usage:
//
//	spec, err := ctab.Compile("*/15 9-17 * * mon-fri")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	for t := range spec.All(time.Now().Truncate(time.Minute)) {
//	    fmt.Println(t)
//	    break
//	}
//
// Day-of-month and day-of-week are ANDed together. Sunday is both 0 and
// 7; a day-of-week field containing 0 also accepts 7. Parsing is
// permissive: out-of-domain values and reversed ranges are accepted
// silently. Use [Spec.Validate] to reject them.
package ctab
