package utils

import (
	"fmt"
	"strings"

	"github.com/avct/uasurfer"
	"github.com/sirupsen/logrus"
)

// UserAgentInfo summarises the visitor's client for log entries.
type UserAgentInfo struct {
	Device  string
	OS      string
	Browser string
	Locale  string
}

var deviceNames = map[uasurfer.DeviceType]string{
	uasurfer.DeviceComputer: "Computer",
	uasurfer.DeviceTablet:   "Tablet",
	uasurfer.DevicePhone:    "Phone",
	uasurfer.DeviceConsole:  "Console",
	uasurfer.DeviceWearable: "Wearable",
	uasurfer.DeviceTV:       "TV",
}

func ParseUserAgent(uaString string, acceptLanguage string) UserAgentInfo {
	info := UserAgentInfo{
		Device: "Unknown",
		Locale: primaryLocale(acceptLanguage),
	}
	if strings.TrimSpace(uaString) == "" {
		return info
	}

	ua := uasurfer.Parse(uaString)
	if name, ok := deviceNames[ua.DeviceType]; ok {
		info.Device = name
	}
	info.OS = fmt.Sprintf("%s %d.%d", ua.OS.Name.String(), ua.OS.Version.Major, ua.OS.Version.Minor)
	info.Browser = fmt.Sprintf("%s %d.%d", ua.Browser.Name.String(), ua.Browser.Version.Major, ua.Browser.Version.Minor)
	return info
}

func (i UserAgentInfo) Fields() logrus.Fields {
	return logrus.Fields{
		"ua_device":  i.Device,
		"ua_os":      i.OS,
		"ua_browser": i.Browser,
		"ua_locale":  i.Locale,
	}
}

func primaryLocale(acceptLanguage string) string {
	locale, _, _ := strings.Cut(acceptLanguage, ",")
	locale, _, _ = strings.Cut(locale, ";")
	return strings.TrimSpace(locale)
}
