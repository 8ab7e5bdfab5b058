package boc

/*

# Bag of Cells container constants

A Bag of Cells (BOC) serializes a tree of cells into a byte stream. This
package only carries the parts of the container that identify it: the 32 bit
magic prefix and the descriptor byte that follows it. Reading the cell count
tables, resolving references between cells and checking the CRC32C trailer is
the job of the container codec built on top of the `cell` package.

## Prefixes

Three prefixes exist, all written big-endian:

	+------------------------+------------+-------------------------------+
	| prefix                 | value      | meaning                       |
	+------------------------+------------+-------------------------------+
	| SerializedBocIdx       | 0x68ff65f3 | indexed, no checksum          |
	| SerializedBocIdxCrc32c | 0xacc3a728 | indexed, CRC32C trailer       |
	| SerializedBoc          | 0xb5ee9c72 | generic, flags in next byte   |
	+------------------------+------------+-------------------------------+

## Descriptor byte

For the two indexed prefixes the byte after the prefix is simply the width in
bytes of a cell reference. For SerializedBoc it is split:

	  7       6        5          4   3      2   1   0
	+-----+--------+-----------+---------+-------------+
	| idx | crc32c | cache bit | flags   | ref size    |
	+-----+--------+-----------+---------+-------------+

DecodeHeader normalizes both forms into a Header.

*/
