package constants

// Logo is the ASCII art shown by the -logo flag
const Logo = `
                                     _     _
  _ __ ___ _ __   ___  ___| |__ (_)_ __
 | '__/ _ \ '_ \ / _ \/ __| '_ \| | '_ \
 | | |  __/ |_) | (_) \__ \ | | | | |_) |
 |_|  \___| .__/ \___/|___/_| |_|_| .__/
          |_|                     |_|
`

// Tagline is the application's motto
const Tagline = "Publish your project without the ceremony"
