package constant

// AsciiArtLogo is the application's ASCII art banner.
const AsciiArtLogo = `
 _ _                      _     _
| (_)_   _____  __ _ _ __(_) __| |
| | \ \ / / _ \/ _' | '__| |/ _' |
| | |\ V /  __/ (_| | |  | | (_| |
|_|_| \_/ \___|\__, |_|  |_|\__,_|
               |___/`
