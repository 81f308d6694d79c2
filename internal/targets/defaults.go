package targets

const (
	androidRes = "android/app/src/main/res/"
	iosAppIcon = "ios/Runner/Assets.xcassets/AppIcon.appiconset/"
)

// Android launcher icons, one per density bucket.
var androidTargets = []Target{
	{androidRes + "mipmap-mdpi/ic_launcher.png", 48},
	{androidRes + "mipmap-hdpi/ic_launcher.png", 72},
	{androidRes + "mipmap-xhdpi/ic_launcher.png", 96},
	{androidRes + "mipmap-xxhdpi/ic_launcher.png", 144},
	{androidRes + "mipmap-xxxhdpi/ic_launcher.png", 192},
}

// iOS AppIcon set. Names carry the point size and scale; Size is in pixels.
var iosTargets = []Target{
	{iosAppIcon + "Icon-App-20x20@1x.png", 20},
	{iosAppIcon + "Icon-App-20x20@2x.png", 40},
	{iosAppIcon + "Icon-App-20x20@3x.png", 60},
	{iosAppIcon + "Icon-App-29x29@1x.png", 29},
	{iosAppIcon + "Icon-App-29x29@2x.png", 58},
	{iosAppIcon + "Icon-App-29x29@3x.png", 87},
	{iosAppIcon + "Icon-App-40x40@1x.png", 40},
	{iosAppIcon + "Icon-App-40x40@2x.png", 80},
	{iosAppIcon + "Icon-App-40x40@3x.png", 120},
	{iosAppIcon + "Icon-App-60x60@2x.png", 120},
	{iosAppIcon + "Icon-App-60x60@3x.png", 180},
	{iosAppIcon + "Icon-App-76x76@1x.png", 76},
	{iosAppIcon + "Icon-App-76x76@2x.png", 152},
	{iosAppIcon + "Icon-App-83.5x83.5@2x.png", 167},
	{iosAppIcon + "Icon-App-1024x1024@1x.png", 1024},
}

var webTargets = []Target{
	{"web/favicon.png", 64},
	{"web/icons/Icon-192.png", 192},
	{"web/icons/Icon-512.png", 512},
	{"web/icons/Icon-maskable-192.png", 192},
	{"web/icons/Icon-maskable-512.png", 512},
}

var windowsICO = ICO{
	Path:  "windows/runner/resources/app_icon.ico",
	Sizes: []int{16, 32, 48, 64, 128, 256},
}

// Default returns the built-in Android, iOS, web and Windows targets. The
// returned Set is a fresh copy.
func Default() Set {
	var s Set
	s.PNG = append(s.PNG, androidTargets...)
	s.PNG = append(s.PNG, iosTargets...)
	s.PNG = append(s.PNG, webTargets...)
	s.ICO = ICO{
		Path:  windowsICO.Path,
		Sizes: append([]int(nil), windowsICO.Sizes...),
	}
	return s
}
