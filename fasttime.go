package colorlog

import (
	"time"
)

// TimestampLayout is the layout every rendered line uses for its timestamp:
// microsecond precision with a signed hour:minute UTC offset.
const TimestampLayout = "2006-01-02 15:04:05.000000 -07:00"

func appendTimestamp(buf []byte, t time.Time) []byte {
	year, month, day := t.Date()
	if year < 0 || year > 9999 {
		return t.AppendFormat(buf, TimestampLayout)
	}
	hour, min, sec := t.Clock()
	_, offset := t.Zone()
	if offset < -(18*3600) || offset > 18*3600 {
		return t.AppendFormat(buf, TimestampLayout)
	}
	buf = appendFourDigits(buf, year)
	buf = append(buf, '-')
	buf = appendTwoDigits(buf, int(month))
	buf = append(buf, '-')
	buf = appendTwoDigits(buf, day)
	buf = append(buf, ' ')
	buf = appendTwoDigits(buf, hour)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, min)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, sec)
	buf = appendMicros(buf, t.Nanosecond()/1000)
	buf = append(buf, ' ')
	if offset < 0 {
		buf = append(buf, '-')
		offset = -offset
	} else {
		buf = append(buf, '+')
	}
	buf = appendTwoDigits(buf, offset/3600)
	buf = append(buf, ':')
	buf = appendTwoDigits(buf, (offset%3600)/60)
	return buf
}

func appendMicros(buf []byte, micros int) []byte {
	var digits [7]byte
	digits[0] = '.'
	for i := 6; i >= 1; i-- {
		digits[i] = byte('0' + micros%10)
		micros /= 10
	}
	return append(buf, digits[:]...)
}

func appendFourDigits(buf []byte, v int) []byte {
	buf = appendTwoDigits(buf, v/100)
	buf = appendTwoDigits(buf, v%100)
	return buf
}

func appendTwoDigits(buf []byte, value int) []byte {
	buf = append(buf, byte('0'+value/10))
	buf = append(buf, byte('0'+value%10))
	return buf
}
