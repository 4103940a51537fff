package sprout

// Version is the current release of sprout.
const Version = "0.3.0"
