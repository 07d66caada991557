package textures

// Brick pattern proportions, in texels of a 256 texture.
const (
	brickRows   = 8
	brickCols   = 4
	mortarWidth = 3
)

// BrickImage draws a running-bond brick wall of size×size texels. The
// diffuse variant is red brick on grey mortar; the specular variant is a
// grey-scale mask where mortar is matte.
func BrickImage(size int, specular bool) *Image {
	img := &Image{Width: size, Height: size, Pix: make([]byte, size*size*3)}

	rowH := size / brickRows
	colW := size / brickCols
	if rowH < 1 {
		rowH = 1
	}
	if colW < 1 {
		colW = 1
	}
	mortar := mortarWidth * size / 256
	if mortar < 1 {
		mortar = 1
	}

	for y := 0; y < size; y++ {
		row := y / rowH
		shift := 0
		if row%2 == 1 {
			shift = colW / 2
		}
		for x := 0; x < size; x++ {
			bx := (x + shift) % size
			inMortar := y%rowH < mortar || bx%colW < mortar

			// Cheap per-brick tint so neighbouring bricks differ.
			brick := row*brickCols + bx/colW
			tint := byte((brick * 37) % 24)

			var r, g, b byte
			switch {
			case specular && inMortar:
				r, g, b = 16, 16, 16
			case specular:
				r, g, b = 160+tint, 160+tint, 160+tint
			case inMortar:
				r, g, b = 150, 146, 140
			default:
				r, g, b = 150+tint*2, 60+tint, 44
			}
			i := (y*size + x) * 3
			img.Pix[i], img.Pix[i+1], img.Pix[i+2] = r, g, b
		}
	}
	return img
}
